package clientcli_test

import (
	"context"
	"fmt"
	"net/http/httptest"

	"github.com/sagarc03/drills"
	"github.com/sagarc03/drills/clientcli"
	drillshttp "github.com/sagarc03/drills/http"
)

func ExampleClient_Cipher() {
	service, err := drills.NewDrillsService(drills.NewRand(1))
	if err != nil {
		panic(err)
	}
	server := httptest.NewServer(drillshttp.NewHandler(&drillshttp.HandlerConfig{}, service).Router())
	defer server.Close()

	client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL})
	if err != nil {
		panic(err)
	}

	result, err := client.Cipher(context.Background(), clientcli.CipherOptions{Text: "attack at dawn", Shift: 3})
	if err != nil {
		panic(err)
	}

	fmt.Println(result.Ciphertext)
	// Output: DWWDFN DW GDZQ
}
