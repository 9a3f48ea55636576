// Command gateway serves every route from a single function, dispatching on
// the exact request path.
package main

import "kalaa-saarathi-api/pkg/server"

func main() {
	server.ServeFunction("")
}
