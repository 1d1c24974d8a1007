package api

// Raydium v3 API Client-
//
// Files:
//   config.go    - API hosts, network names and timeouts
//   base.go      - Client struct, options and construction
//   executor.go  - shared GET/decode/extract/fallback logic
//   endpoints.go - endpoint descriptors for every remote operation
//   errors.go    - transport and decode error kinds
//   logger.go    - ErrorLogger capability and implementations
//   types.go     - ProtocolInfo and other typed results
//   pools.go     - /pools endpoints
//   farms.go     - /farms endpoints
//   mints.go     - /mint endpoints
//   ido.go       - /ido endpoints
//   protocol.go  - /main endpoints (version, rpcs, tvl, configs)
//
// Usage:
//   client := api.NewClient()                                   // from base.go
//   pools := client.Pools.GetInfoByIDs(ctx, []string{id1, id2}) // from pools.go
//   version := client.Main.GetVersion(ctx)                      // from protocol.go
//
// Façade methods never return errors. Failures are logged through the
// configured ErrorLogger and the endpoint's default value is returned.
