// Package cli implements the command surface of the client binary
package cli

import (
	"fmt"

	"github.com/iudanet/leadsync/internal/client/auth"
	"github.com/iudanet/leadsync/internal/client/iocli"
	"github.com/iudanet/leadsync/internal/leads"
	"github.com/iudanet/leadsync/internal/netmon"
	"github.com/iudanet/leadsync/internal/syncer"
)

type Cli struct {
	io          iocli.IO
	authService *auth.Service
	leadService leads.Service
	syncService syncer.Service
	monitor     *netmon.Monitor
}

func New(io iocli.IO, authService *auth.Service, leadService leads.Service, syncService syncer.Service, monitor *netmon.Monitor) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		leadService: leadService,
		syncService: syncService,
		monitor:     monitor,
	}
}

// PrintUsage prints the command overview
func PrintUsage() {
	fmt.Print(`leadsync - offline-first lead management client

Usage: leadsync [flags] <command> [arguments]

Commands:
  login                          Authenticate against the server
  logout                         Remove the stored session
  status                         Show session, connectivity and sync state
  list                           List all leads
  get <lead-id>                  Show one lead with tasks and activities
  add                            Add a new lead interactively
  update <lead-id> [flags]       Update lead fields
  delete <lead-id>               Delete a lead
  sync                           Push pending operations to the server
  conflicts                      List unresolved sync conflicts
  resolve <op-id> <strategy>     Resolve a conflict (local|server|merge)

Flags:
  -server string   Server URL (default "http://localhost:8080")
  -db string       Path to local database (default "leadsync-client.db")
  -version         Show version information
`)
}
