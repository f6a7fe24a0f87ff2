// Package model contains the dashboard's view state and static endpoint list.
package model

import "encoding/json"

// ConnectionStatus summarizes the outcome of the most recently settled request.
type ConnectionStatus string

// Connection status labels.
const (
	StatusNotChecked   ConnectionStatus = "Not checked"
	StatusConnected    ConnectionStatus = "Connected ✅"
	StatusDisconnected ConnectionStatus = "Disconnected ❌"
)

// Phase is the request lifecycle of a dashboard. It is one of Idle, Loading,
// Succeeded or Failed.
type Phase interface {
	phase()
}

// Idle means nothing has been requested yet.
type Idle struct{}

// Loading means a request is in flight.
type Loading struct{}

// Succeeded carries the raw JSON body of the last successful response.
type Succeeded struct {
	Data json.RawMessage
}

// Failed carries the human-readable message of the last failed request.
type Failed struct {
	Message string
}

func (Idle) phase()      {}
func (Loading) phase()   {}
func (Succeeded) phase() {}
func (Failed) phase()    {}

// View is the complete view state of one mounted dashboard.
type View struct {
	Phase  Phase
	Status ConnectionStatus
}

// InitialView is the state of a freshly mounted dashboard.
func InitialView() View {
	return View{Phase: Idle{}, Status: StatusNotChecked}
}

// Loading reports whether a request is in flight.
func (v View) Loading() bool {
	_, ok := v.Phase.(Loading)
	return ok
}

// Data returns the last successful response body, or nil.
func (v View) Data() json.RawMessage {
	if s, ok := v.Phase.(Succeeded); ok {
		return s.Data
	}
	return nil
}

// HasData reports whether there is a response body worth displaying.
// A literal JSON null counts as no data; false, 0 and "" are shown.
func (v View) HasData() bool {
	d := v.Data()
	return len(d) > 0 && string(d) != "null"
}

// Err returns the failure message, or "" when the view is not Failed.
func (v View) Err() string {
	if f, ok := v.Phase.(Failed); ok {
		return f.Message
	}
	return ""
}
