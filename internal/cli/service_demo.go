package cli

import (
	"fmt"

	"github.com/rwx-cloud/longlines/internal/text"
)

const (
	DemoText      = "This long line is really not that long, but it is not short either."
	DemoMaxLength = 13
)

// Demo prints the sample sentence wrapped at DemoMaxLength.
func (s Service) Demo() error {
	_, err := fmt.Fprintln(s.Stdout, text.Wrap(DemoText, DemoMaxLength))
	return err
}
