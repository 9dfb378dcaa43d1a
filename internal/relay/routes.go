package relay

const (
	// SessionURLParam and PartyURLParam name the path parameters.
	SessionURLParam = "sessionId"
	PartyURLParam   = "party"

	// PingEndpoint reports that the relay is up.
	PingEndpoint = "/ping"
	// ParamsEndpoint publishes or returns a session's curve and generator.
	ParamsEndpoint = "/session/{" + SessionURLParam + "}/params"
	// KeyEndpoint publishes or returns one party's compressed public point.
	KeyEndpoint = "/session/{" + SessionURLParam + "}/keys/{" + PartyURLParam + "}"
)
