// Package http provides the HTTP server for the drills demo service.
//
// Every route is a GET that parses its query string into a typed request,
// calls the Service, and answers in plain text. Validation failures are
// answered with 400 and a short message such as "shift is required".
//
// # Routes
//
//	GET /                          Hello Drills!
//	GET /echo                      base URL, host and path of the request
//	GET /queryViewer               logs the decoded query, empty body
//	GET /greetings?name=&race=     greeting for a fantasy character
//	GET /sum?a=&b=[&format=json]   arithmetic sum
//	GET /cipher?text=&shift=       Caesar cipher
//	GET /lotto?numbers=..[&format=json]
//
// # Usage
//
//	service, err := drills.NewDrillsService(drills.NewRand(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	handlerCfg := http.HandlerConfig{
//	    Metrics:     http.NewMetrics(), // nil disables metrics
//	    MetricsPath: "/metrics",
//	}
//	handler := http.NewHandler(&handlerCfg, service)
//	http.ListenAndServe(":8000", handler.Router())
//
// # Middleware
//
// Router installs, in order: optional CORS, RequestIDMiddleware,
// RequestLogger, panic recovery and optional Prometheus instrumentation.
package http
