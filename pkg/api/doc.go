// Package api defines the wire types exchanged with bridge clients
//
// This package contains the request and response envelopes, the error
// object, the discovery document, and the typed parameter records for
// each supported method
package api
