package contracts

type CasNormalizer interface {
	Normalize(casNumber string) string
}
