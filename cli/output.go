package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Aashish23092/id-verification/dto"
)

type printer struct {
	w        io.Writer
	positive *color.Color
	warning  *color.Color
	negative *color.Color
	label    *color.Color
}

// newPrinter colours output only when writing to a terminal
func newPrinter(w io.Writer, noColor bool) *printer {
	p := &printer{
		w:        w,
		positive: color.New(color.FgGreen, color.Bold),
		warning:  color.New(color.FgYellow, color.Bold),
		negative: color.New(color.FgRed, color.Bold),
		label:    color.New(color.FgCyan),
	}

	if noColor || !isTerminal(w) {
		for _, c := range []*color.Color{p.positive, p.warning, p.negative, p.label} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) Result(res dto.VerificationResult) {
	status := p.negative.Sprint("INVALID")
	switch {
	case res.IsValid:
		status = p.positive.Sprint("VALID")
	case res.Outcome == dto.OutcomeChecksumFailed || res.Outcome == dto.OutcomeStructureInvalid:
		status = p.warning.Sprint("INVALID")
	}

	fmt.Fprintf(p.w, "%s %s\n", p.label.Sprintf("%-11s", "Status:"), status)
	p.field("Identifier:", string(res.Identifier))
	p.field("Value:", res.Value)
	fmt.Fprintf(p.w, "%s %d\n", p.label.Sprintf("%-11s", "Confidence:"), res.Confidence)
	p.field("Outcome:", string(res.Outcome))
	p.field("Holder:", res.HolderType)
	p.field("Message:", res.Message)

	if d := res.Details; d != nil {
		p.field("Name:", d.Name)
		p.field("Father:", d.FatherName)
		p.field("DOB:", d.DOB)
		p.field("Gender:", d.Gender)
		p.field("Address:", d.Address)
	}
}

func (p *printer) HolderType(ht dto.HolderTypeResponse) {
	p.field("PAN:", ht.PAN)
	c := p.negative
	if ht.Valid {
		c = p.positive
	}
	fmt.Fprintf(p.w, "%s %s\n", p.label.Sprintf("%-11s", "Holder:"), c.Sprint(ht.HolderType))
}

// field skips empty values
func (p *printer) field(name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.label.Sprintf("%-11s", name), value)
}
