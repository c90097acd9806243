package main

import (
	"fmt"
	"strings"

	"github.com/jmoralesv/educrawl"
)

// Run executes the "term add" command.
func (c *TermAddCmd) Run(deps *Dependencies) error {
	term := &educrawl.Term{
		Term:     c.Term,
		Synonyms: c.Synonyms,
	}

	if err := deps.Terms.CreateTerm(deps.Ctx, term); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", educrawl.ErrorMessage(err))
		return err
	}

	if len(term.Synonyms) == 0 {
		fmt.Fprintf(deps.Stdout, "Added term %q\n", term.Term)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Added term %q with synonyms: %s\n",
		term.Term, strings.Join(term.Synonyms, ", "))

	return nil
}
