// Package relay carries the public half of a two-process exchange.
//
// The relay is a rendezvous for public material only: the initiator of a
// session publishes the curve parameters and generator, and each party
// publishes its compressed public point. Private scalars never leave the
// party that drew them.
//
// Routes (JSON over HTTP):
//
//	POST /session/{id}/params          publish SessionParams (once)
//	GET  /session/{id}/params          fetch SessionParams
//	POST /session/{id}/keys/{party}    publish a PublishedKey (once per party)
//	GET  /session/{id}/keys/{party}    fetch a party's PublishedKey
//
// HTTP is the client, and Server the in-memory handler run by cmd/relay.
// Missing resources come back as ErrNotFound; other non-2xx statuses are
// returned as errors carrying the method, path and status text.
package relay
