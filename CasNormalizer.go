package main

import (
	"strings"
)

type CasNormalizer struct {
	dashReplacer *strings.Replacer
}

func NewCasNormalizer() *CasNormalizer {
	// dash lookalikes that sneak in via spreadsheets and copy-paste
	dashes := strings.Split("‐‑‒–—−", "")

	replaceOldNew := make([]string, 0, len(dashes)*2)
	for _, dash := range dashes {
		replaceOldNew = append(replaceOldNew, dash, "-")
	}

	return &CasNormalizer{
		dashReplacer: strings.NewReplacer(replaceOldNew...),
	}
}

func (n *CasNormalizer) Normalize(casNumber string) string {
	normalized := n.dashReplacer.Replace(strings.TrimSpace(casNumber))
	normalized = strings.Join(strings.Fields(normalized), "")
	return strings.ToUpper(normalized)
}
