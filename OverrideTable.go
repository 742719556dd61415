package main

import (
	"github.com/Nami-00/cas/contracts"
)

type OverrideTable struct {
	normalizer contracts.CasNormalizer
	entries    map[string]contracts.LookupResult
}

// NewOverrideTable builds the table with the curated entries. Keys are
// normalized once here so a lookup only has to normalize its argument.
func NewOverrideTable(normalizer contracts.CasNormalizer) *OverrideTable {
	return NewOverrideTableFromEntries(normalizer, curatedOverrideEntries())
}

func NewOverrideTableFromEntries(normalizer contracts.CasNormalizer, entries map[string]contracts.LookupResult) *OverrideTable {
	table := &OverrideTable{
		normalizer: normalizer,
		entries:    make(map[string]contracts.LookupResult, len(entries)),
	}

	for casNumber, result := range entries {
		table.entries[normalizer.Normalize(casNumber)] = result
	}

	return table
}

func (t *OverrideTable) Lookup(casNumber string) (contracts.LookupResult, bool) {
	result, found := t.entries[t.normalizer.Normalize(casNumber)]
	if found {
		result.CasNumber = casNumber
	}

	return result, found
}

// curatedOverrideEntries lists the substances PubChem cannot resolve by CAS
// number, mostly the asbestos mineral family.
func curatedOverrideEntries() map[string]contracts.LookupResult {
	formula := func(value string) *string { return &value }
	weight := func(value float64) *float64 { return &value }

	return map[string]contracts.LookupResult{
		"77536-66-4":  {MolecularFormula: formula("Ca2Fe5H2O24Si8"), MolecularWeight: weight(970.1)},
		"77536-67-5":  {MolecularFormula: formula("H2Mg7O24Si8"), MolecularWeight: weight(780.82)},
		"77536-68-6":  {MolecularFormula: formula("Ca2H2Mg5O24Si8"), MolecularWeight: weight(812.37)},
		"13768-00-8":  {MolecularFormula: formula("Fe2H16Mg3Na2O24Si8+14"), MolecularWeight: weight(855.38)},
		"17068-78-9":  {MolecularFormula: formula("Fe7H2O24Si8"), MolecularWeight: weight(1001.6)},
		"12172-67-7":  {MolecularFormula: formula("Ca2Fe5H2O24Si8"), MolecularWeight: weight(970.1)},
		"12172-73-5":  {MolecularFormula: formula("Fe7H2O24Si8"), MolecularWeight: weight(1001.6)},
		"12001-28-4":  {MolecularFormula: formula("Fe2H16Mg3Na2O24Si8+14"), MolecularWeight: weight(855.38)},
		"12001-29-5":  {MolecularFormula: formula("H4Mg3O9Si2"), MolecularWeight: weight(277.11)},
		// asbestos as a class has no fixed composition, blank on purpose
		"1332-21-4":   {},
		"132207-32-0": {MolecularFormula: formula("Ca2H2Mg5O24Si8"), MolecularWeight: weight(812.37)},
		"132207-33-1": {MolecularFormula: formula("Fe2H16Mg3Na2O24Si8+14"), MolecularWeight: weight(855.38)},
		"14567-73-8":  {MolecularFormula: formula("H4Mg3O9Si2"), MolecularWeight: weight(277.11)},
		"12185-10-3":  {MolecularFormula: formula("P4"), MolecularWeight: weight(123.8950480)},
		"25512-42-9":  {MolecularFormula: formula("C12H8Cl2"), MolecularWeight: weight(223.09792)},
	}
}
