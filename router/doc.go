// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the tally API.

# Route Registration

	mux := router.NewRouter(db, cfg)

db may be nil; stored-election routes then answer 503.

# Endpoints

	GET  /health                         - Liveness
	GET  /                               - Banner
	GET  /methods                        - Supported tally methods
	POST /tally                          - Tally with the configured default method
	POST /tally/{method}                 - Tally an inline ballot table
	GET  /elections/{id}/tally/{method}  - Tally a stored election

All API routes are wrapped with middleware.WithLogging.
*/
package router
