/*
Control sequences are used to do things like move the cursor, change text color, clear the screen, and more. They are the primary way that programs interact with the terminal.

Programs running within terminals only have a single way to communicate with the terminal: writing bytes to the connected file descriptor (typically a pty). In order to differentiate between text to be displayed and commands to be executed, terminals use special syntax known collectively as control sequences.

Due to the historical nature of terminals, control sequences come in a handful of different formats. Most begin with an escape character (0x1B), so control sequences are sometimes referred to as escape codes or escape sequences.

The packages below each render one format of control sequence:

  - esc: plain Escape Sequences (ESC plus a final byte)
  - csi: CSI Sequences ("Control Sequence Introducer")
  - osc: OSC Sequences ("Operating System Command")

Each package exposes a Command value whose String method produces the
exact byte encoding, ready to be written to the terminal.
*/
package sequences
