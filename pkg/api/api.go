package api

import "encoding/json"

// RPCRequest is the envelope sent to the backend. The backend exposes a
// single endpoint that dispatches on the function name, mirroring the
// spreadsheet script it emulates.
type RPCRequest struct {
	Function   string            `json:"function"`
	Parameters []json.RawMessage `json:"parameters"`
}

// ConflictPayload carries both versions of an entity when the backend
// detected a concurrent modification. Server is the stored row, Local is
// the payload the client sent.
type ConflictPayload struct {
	Server json.RawMessage `json:"server"`
	Local  json.RawMessage `json:"local"`
}

// Response is the envelope returned by the backend for every function call.
// A response with Success=true may still carry a Conflict, which means the
// write was not applied and the caller must resolve it.
type Response struct {
	Data     json.RawMessage  `json:"data,omitempty"`
	Error    string           `json:"error,omitempty"`
	Conflict *ConflictPayload `json:"conflict,omitempty"`
	Success  bool             `json:"success"`
}

// LoginRequest is the payload of the "login" function
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the data of a successful "login" call
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ChangesResponse is the data of a "getChanges" call: everything modified
// since the client's last sync time. Deletions are reported as ids.
type ChangesResponse struct {
	Leads        []json.RawMessage `json:"leads,omitempty"`
	Tasks        []json.RawMessage `json:"tasks,omitempty"`
	Activities   []json.RawMessage `json:"activities,omitempty"`
	DeletedLeads []string          `json:"deletedLeads,omitempty"`
	DeletedTasks []string          `json:"deletedTasks,omitempty"`
}
