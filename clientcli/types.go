package clientcli

// GreetOptions configures a greeting request.
type GreetOptions struct {
	Name string
	Race string
}

// SumOptions configures a sum request.
type SumOptions struct {
	A float64
	B float64
}

// SumResult mirrors the JSON response from /sum?format=json.
type SumResult struct {
	A   float64 `json:"a"`
	B   float64 `json:"b"`
	Sum float64 `json:"sum"`
}

// CipherOptions configures a cipher request.
type CipherOptions struct {
	Text  string
	Shift int
}

// CipherResult pairs the ciphertext with the request that produced it.
type CipherResult struct {
	Text       string `json:"text"`
	Shift      int    `json:"shift"`
	Ciphertext string `json:"ciphertext"`
}

// LottoOptions configures a lotto request.
type LottoOptions struct {
	Numbers []int
}

// LottoResult mirrors the JSON response from /lotto?format=json.
type LottoResult struct {
	Guesses        []int  `json:"guesses"`
	WinningNumbers []int  `json:"winning_numbers"`
	Misses         []int  `json:"misses"`
	Message        string `json:"message"`
}
