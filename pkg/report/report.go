// Package report turns fit results into operator-facing text
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/philipparndt/elevatorfit/pkg/fit"
	"github.com/philipparndt/elevatorfit/pkg/search"
	"github.com/philipparndt/elevatorfit/pkg/settings"
)

// Status colours, matching the object tint in the 3D view
const (
	ColorFits     = "#27ae60"
	ColorDoorOnly = "#f39c12"
	ColorNoFit    = "#e74c3c"
)

// StatusText returns the one-line verdict for a result
func StatusText(r fit.Result) string {
	switch r.Status() {
	case fit.Fits:
		return "✓ Object fits!"
	case fit.DoorOnly:
		return "✗ Too big for elevator"
	case fit.EnclosureOnly:
		return "✗ Cannot pass through door"
	default:
		return "✗ Too big for door and elevator"
	}
}

// StatusColor returns the hex colour for a result. Only a door failure is
// red; passing the door but not the cab is orange.
func StatusColor(r fit.Result) string {
	switch r.Status() {
	case fit.Fits:
		return ColorFits
	case fit.DoorOnly:
		return ColorDoorOnly
	default:
		return ColorNoFit
	}
}

// Clearance formats a margin in centimeters, or the fallback when there is none
func Clearance(margin float64, none string) string {
	if margin > 0 {
		return fmt.Sprintf("%.1fcm", margin)
	}
	return none
}

// Printer writes reports to a terminal, colouring the verdict when the
// terminal supports it
type Printer struct {
	w   io.Writer
	out *termenv.Output
}

// NewPrinter creates a printer for w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, out: termenv.NewOutput(w)}
}

func (p *Printer) colored(text, hex string) string {
	return p.out.String(text).Foreground(p.out.Color(hex)).Bold().String()
}

// Check prints the verdict and measurements for one orientation
func (p *Printer) Check(r fit.Result) {
	fmt.Fprintln(p.w, p.colored(StatusText(r), StatusColor(r)))
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "Rotated size:     %s cm\n", r.RotatedExtents)
	fmt.Fprintf(p.w, "Door clearance:   %s\n", Clearance(r.DoorClearance, "No clearance"))
	fmt.Fprintf(p.w, "Elevator space:   %s\n", Clearance(r.EnclosureSpace, "No space"))
	fmt.Fprintln(p.w)

	fmt.Fprintln(p.w, "Door:")
	fmt.Fprintf(p.w, "  Width:  %s (%+.1f cm)\n", mark(r.Door.WidthFits), r.Door.WidthClearance)
	fmt.Fprintf(p.w, "  Height: %s (%+.1f cm)\n", mark(r.Door.HeightFits), r.Door.HeightClearance)
	fmt.Fprintln(p.w, "Elevator:")
	fmt.Fprintf(p.w, "  Width:  %s (%+.1f cm)\n", mark(r.Enclosure.WidthFits), r.Enclosure.WidthSpace)
	fmt.Fprintf(p.w, "  Height: %s (%+.1f cm)\n", mark(r.Enclosure.HeightFits), r.Enclosure.HeightSpace)
	fmt.Fprintf(p.w, "  Length: %s (%+.1f cm)\n", mark(r.Enclosure.LengthFits), r.Enclosure.LengthSpace)
}

// Evaluations prints one row per search candidate
func (p *Printer) Evaluations(title string, evals []search.Evaluation) {
	fmt.Fprintln(p.w, title)
	fmt.Fprintln(p.w, strings.Repeat("=", len([]rune(title))))
	for _, e := range evals {
		verdict := p.colored("fail", ColorNoFit)
		if e.Fits {
			verdict = p.colored("ok  ", ColorFits)
		}
		fmt.Fprintf(p.w, "  %-15s %s  %-22s %+8.1f cm\n",
			e.Candidate.Label, verdict, e.Extents.String(), e.Margin)
	}
	fmt.Fprintln(p.w)
}

// AutoFit prints the outcome of an auto-fit search
func (p *Printer) AutoFit(r search.AutoFitResult, ok bool) {
	if !ok {
		fmt.Fprintln(p.w, p.colored("✗ No tested orientation fits", ColorNoFit))
		return
	}

	color := ColorFits
	if r.Source == search.SourceEnclosure {
		color = ColorDoorOnly
	}
	fmt.Fprintf(p.w, "%s %s\n",
		p.colored(fmt.Sprintf("Best rotation (%s search):", r.Source), color),
		r.Candidate.Rotation)
	fmt.Fprintf(p.w, "  Candidate: %s\n", r.Candidate.Label)
	fmt.Fprintf(p.w, "  Size:      %s cm\n", r.Extents)
	fmt.Fprintf(p.w, "  Margin:    %.1f cm\n", r.Margin)
}

// Warnings prints advisory messages
func (p *Printer) Warnings(warnings []settings.Warning) {
	for _, w := range warnings {
		fmt.Fprintln(p.w, p.colored("warning: ", ColorDoorOnly)+w.String())
	}
}

func mark(ok bool) string {
	if ok {
		return "ok"
	}
	return "too big"
}
