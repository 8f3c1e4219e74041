// Package drills provides the request transforms behind the drills HTTP demo
// service: a greeting, an arithmetic sum, a Caesar cipher and a lottery draw.
//
// Every operation is a stateless transform. Raw query values are parsed into a
// typed request (ParseGreetingRequest, ParseSumRequest, ParseCipherRequest,
// ParseLottoRequest) before any business logic runs; parse failures are
// returned as *ValidationError, which matches ErrInvalidInput with errors.Is.
//
// # Key Components
//
//   - Encode: Caesar substitution over the 26-letter uppercase alphabet
//   - DrillsService: groups the operations behind the http.Service interface
//   - CheckLotto: compares guesses against a drawn set of winning numbers
//
// # Example Usage
//
//	req, err := drills.ParseCipherRequest(r.URL.Query())
//	if err != nil {
//	    // err is a *drills.ValidationError, e.g. "shift is required"
//	}
//	ciphertext := drills.Encode(req.Text, req.Shift)
//
//	service, err := drills.NewDrillsService(drills.NewRand(42))
//	result := service.Lotto(drills.LottoRequest{Guesses: []int{1, 2, 3, 4, 5, 6}})
//
// See the http package for the REST surface and clientcli for a Go client.
package drills
