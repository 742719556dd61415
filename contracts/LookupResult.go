package contracts

// LookupResult carries the resolved data for one CAS registry number.
// Both fields nil means the substance is unknown to every source.
type LookupResult struct {
	CasNumber        string   `json:"cas_number"`
	MolecularFormula *string  `json:"molecular_formula"`
	MolecularWeight  *float64 `json:"molecular_weight"`
}

func (r *LookupResult) Found() bool {
	return r.MolecularFormula != nil || r.MolecularWeight != nil
}
