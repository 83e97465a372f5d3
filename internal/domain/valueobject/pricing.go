package valueobject

// Тарифы доплат. Базовая цена — это верхняя граница бюджета запроса:
// заявленный клиентом потолок служит отправной точкой, доплаты идут поверх.
const (
	RushFeeRate     = 0.5
	ConceptFeeUnit  = 50.0
	RevisionFeeUnit = 25.0

	// Количество дополнительных концепций и правок ограничено сверху,
	// ограничение применяется внутри расчёта, а не только в форме.
	MaxAdditionalConcepts  = 10
	MaxAdditionalRevisions = 10
)

// Quote — результат расчёта стоимости запроса с учётом доплат.
type Quote struct {
	BasePrice   float64 `json:"base_price"`
	RushFee     float64 `json:"rush_fee"`
	ConceptFee  float64 `json:"concept_fee"`
	RevisionFee float64 `json:"revision_fee"`
	Total       float64 `json:"total"`
}

// ComputeQuote считает стоимость запроса. Функция чистая и детерминированная:
// одинаковые входы всегда дают одинаковый Quote.
func ComputeQuote(basePrice float64, rushRequest bool, additionalConcepts, additionalRevisions int) Quote {
	if basePrice < 0 {
		basePrice = 0
	}
	additionalConcepts = clampAddon(additionalConcepts, MaxAdditionalConcepts)
	additionalRevisions = clampAddon(additionalRevisions, MaxAdditionalRevisions)

	quote := Quote{BasePrice: basePrice}
	if rushRequest {
		quote.RushFee = basePrice * RushFeeRate
	}
	quote.ConceptFee = float64(additionalConcepts) * ConceptFeeUnit
	quote.RevisionFee = float64(additionalRevisions) * RevisionFeeUnit
	quote.Total = basePrice + quote.RushFee + quote.ConceptFee + quote.RevisionFee

	return quote
}

func clampAddon(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
