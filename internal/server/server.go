package server

// Server bundles the entity-specific HTTP servers. Right now the status
// server is the only one.
type Server struct {
	StatusServer
}

func NewServer(
	statusServer StatusServer,
) Server {
	return Server{
		StatusServer: statusServer,
	}
}
