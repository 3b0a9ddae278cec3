package escapes

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/hnimtadd/escapes/sequences/osc"
)

// Link renders text as a clickable hyperlink pointing at url (OSC 8).
// Both payloads are inserted verbatim; keeping control characters out
// of them is the caller's responsibility.
func Link(url, text string) string {
	open := osc.Command{Number: 8, Params: []string{"", url}}
	closing := osc.Command{Number: 8, Params: []string{"", ""}}
	return open.String() + text + closing.String()
}

// ImageOptions control how Image renders.
type ImageOptions struct {
	// Width and Height of the rendered image. A bare number is a
	// cell count; "Npx" is pixels, "N%" a percentage of the session
	// size, and "auto" the image's own dimension. Empty values are
	// omitted from the sequence.
	Width  string
	Height string

	// StretchToFit scales the image to exactly Width x Height
	// instead of preserving its aspect ratio.
	StretchToFit bool
}

// Image displays an image in terminals supporting the iTerm2 inline
// image protocol (OSC 1337). data is the raw image file contents.
func Image(data []byte, opts ImageOptions) string {
	var sb strings.Builder
	sb.WriteString("File=inline=1")
	if opts.Width != "" {
		sb.WriteString(";width=")
		sb.WriteString(opts.Width)
	}
	if opts.Height != "" {
		sb.WriteString(";height=")
		sb.WriteString(opts.Height)
	}
	if opts.StretchToFit {
		sb.WriteString(";preserveAspectRatio=0")
	}
	sb.WriteByte(':')
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return osc.Command{Number: 1337, Params: []string{sb.String()}}.String()
}

// SetWindowTitle sets the terminal window title (OSC 2).
func SetWindowTitle(title string) string {
	return osc.Command{Number: 2, Params: []string{title}}.String()
}

// SetClipboard writes text to the system clipboard (OSC 52).
func SetClipboard(text string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	return osc.Command{Number: 52, Params: []string{"c", encoded}}.String()
}

// SetCwd reports dir as the session's current working directory to
// terminals supporting the iTerm2 protocol (OSC 50).
func SetCwd(dir string) string {
	return osc.Command{Number: 50, Params: []string{"CurrentDir=" + dir}}.String()
}

// AnnotationOptions control how Annotation renders.
type AnnotationOptions struct {
	// Length is the number of cells the annotation covers. Zero
	// annotates only the cell under the cursor.
	Length int

	// X and Y place the annotation at an absolute position instead
	// of the cursor. Honored only when Positioned is set and
	// Length is positive.
	X, Y       int
	Positioned bool

	// Hidden creates the annotation without opening its window.
	Hidden bool
}

// Annotation attaches a note to a run of cells in terminals
// supporting the iTerm2 annotation protocol (OSC 1337). Pipes are
// stripped from message since '|' separates the protocol's fields.
func Annotation(message string, opts AnnotationOptions) string {
	message = strings.ReplaceAll(message, "|", "")

	key := "AddAnnotation="
	if opts.Hidden {
		key = "AddHiddenAnnotation="
	}

	var value string
	switch {
	case opts.Length > 0 && opts.Positioned:
		value = strings.Join([]string{
			message,
			strconv.Itoa(opts.Length),
			strconv.Itoa(opts.X),
			strconv.Itoa(opts.Y),
		}, "|")
	case opts.Length > 0:
		value = strconv.Itoa(opts.Length) + "|" + message
	default:
		value = message
	}

	return osc.Command{Number: 1337, Params: []string{key + value}}.String()
}
