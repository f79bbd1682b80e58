package report

import "fmt"

// Summary holds the run-wide counters. Every probed file lands in
// exactly one of OK, NotSupported or Errors, so Total always equals
// their sum.
type Summary struct {
	Total        int
	OK           int
	NotSupported int
	Errors       int
}

// Summary prints the end-of-run block. Brief mode suppresses it.
func (p *Printer) Summary(s *Summary) {
	if p.opts.Brief {
		return
	}
	fmt.Fprintf(p.out, "\n--- Summary ---\n")
	fmt.Fprintf(p.out, "Total checked: %d\n", s.Total)
	green.Fprintf(p.out, "OK: %d\n", s.OK)
	red.Fprintf(p.out, "NOT SUPPORTED: %d\n", s.NotSupported)
	yellow.Fprintf(p.out, "Errors: %d\n", s.Errors)
}
