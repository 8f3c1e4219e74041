// Package clientcli provides a client library for calling a drills server.
//
// It wraps the greeting, sum, cipher, lotto and echo endpoints and includes
// profile-based configuration for switching between servers.
//
// # Basic Usage
//
//	client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:8000"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Cipher(ctx, clientcli.CipherOptions{Text: "hello", Shift: 3})
//
// Server-side validation failures come back as *APIError; match them with
// errors.Is(err, clientcli.ErrBadRequest).
//
// # Profile Configuration
//
//	configFile, err := clientcli.LoadConfigFile(clientcli.DefaultConfigPath())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	profile, err := configFile.GetProfile("staging")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client, err := clientcli.New(clientcli.ConfigFromProfile(profile))
//
// # Output Formatting
//
//	formatter := clientcli.NewFormatter(jsonOutput, quiet)
//	formatter.FormatCipher(os.Stdout, result)
package clientcli
