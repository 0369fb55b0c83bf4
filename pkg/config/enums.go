package config

// TransportType defines tool server transport types
type TransportType string

const (
	// TransportTypeStdio uses subprocess communication via stdin/stdout
	TransportTypeStdio TransportType = "stdio"
	// TransportTypeHTTP uses HTTP/HTTPS JSON-RPC
	TransportTypeHTTP TransportType = "http"
	// TransportTypeSSE uses Server-Sent Events
	TransportTypeSSE TransportType = "sse"
)

// IsValid checks if the transport type is valid
func (t TransportType) IsValid() bool {
	return t == TransportTypeStdio || t == TransportTypeHTTP || t == TransportTypeSSE
}
