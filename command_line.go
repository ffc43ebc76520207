package argolis

import (
	"os"
)

// ParseCommandLine parses os.Args, the way flag.Parse does for flag.CommandLine.
// There is no default Parser: every program creates its own
func (p *Parser) ParseCommandLine() error {
	return p.Parse(os.Args)
}
