// Package main runs the in-memory HTTP relay that lets two spdhec processes
// run an exchange. It stores each session's curve parameters and generator
// and the compressed public point of each party.
//
// HTTP API
//
//	POST /session/{id}/params
//	    Open a session with its SessionParams. The curve must validate and
//	    the generator must be a non-identity point on it.
//
//	GET /session/{id}/params
//	    Return the session's SessionParams.
//
//	POST /session/{id}/keys/{party}
//	    Publish {party}'s compressed public point (hex). The point must
//	    decompress onto the session's curve.
//
//	GET /session/{id}/keys/{party}
//	    Return {party}'s published point.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Every value is write-once; a second publish returns 409.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :8080.
//
// The relay only ever sees public material.
package main
