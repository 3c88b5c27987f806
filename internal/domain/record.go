package domain

// Record is a single precipitation observation tied to a municipality.
// Date is kept as the raw YYYY-MM-DD key from the source data.
type Record struct {
	UF            string  `json:"uf"`
	Municipality  string  `json:"municipality"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Precipitation float64 `json:"precipitation"`
	Date          string  `json:"date"`
}
