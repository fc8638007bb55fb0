package uart

// ServerOps binds a transport descriptor to the read/write contract of the
// exposition server. The descriptor is carried explicitly; the server never
// sees it.
type ServerOps struct {
	port Port
}

// NewServerOps returns the read/write binding for port.
func NewServerOps(port Port) *ServerOps {
	return &ServerOps{port: port}
}

// Read forwards to the transport read primitive.
func (o *ServerOps) Read(p []byte) (int, error) {
	return o.port.Read(p)
}

// Write forwards to the transport write primitive.
func (o *ServerOps) Write(p []byte) (int, error) {
	return o.port.Write(p)
}

// Port returns the bound transport descriptor.
func (o *ServerOps) Port() Port {
	return o.port
}
