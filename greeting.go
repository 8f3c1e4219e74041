package drills

import "net/url"

// ParseGreetingRequest validates the name and race query parameters.
func ParseGreetingRequest(q url.Values) (GreetingRequest, error) {
	name, err := requireParam(q, "name")
	if err != nil {
		return GreetingRequest{}, err
	}

	race, err := requireParam(q, "race")
	if err != nil {
		return GreetingRequest{}, err
	}

	return GreetingRequest{Name: name, Race: race}, nil
}

// Greet welcomes a fantasy character to the kingdom.
func Greet(req GreetingRequest) string {
	return "Greetings " + req.Name + " the " + req.Race + ", welcome to our kingdom."
}
