// Command pgc generates typed database clients from an analyzed SQL
// catalog.
//
// Usage:
//
//	pgc generate --request request.json --out src/db
//	pgc watch --request request.json
//	pgc plugin --format msgpack < request.mp > response.json
//	pgc targets
//	pgc version
//
// Settings may also come from a pgc.yaml file, discovered from the
// working directory up to the repository root, and from PGC_* variables.
package main

import "os"

func main() {
	os.Exit(Execute())
}
