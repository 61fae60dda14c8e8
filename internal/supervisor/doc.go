// Presence Analyzer - Employee Presence Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/presence-analyzer

/*
Package supervisor runs the long-lived parts of the presence analyzer under a
suture v4 supervisor tree.

	root ("presence-analyzer")
	├── data ("data-layer")
	│   └── DatasetWarmer
	└── api ("api-layer")
	    └── HTTPServerService

The data layer can fail and back off without taking the HTTP server down;
requests then fall through to an on-demand load in the data source. Supervisor
events (service panics, restarts, backoff) are logged through sutureslog on
top of the zerolog slog adapter.

Usage:

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewDatasetWarmer(source))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err := tree.Serve(ctx)
*/
package supervisor
