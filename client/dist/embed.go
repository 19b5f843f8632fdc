package clientdist

import _ "embed"

// ClientJS is the thin client served at "/_cosmos/client.js".
//
//go:embed cosmos-client.js
var ClientJS []byte
