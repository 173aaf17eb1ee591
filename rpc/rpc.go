package rpc

import (
	"net"
	"net/rpc"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/game"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/logger"
)

// Server manages the RPC listener.
type Server struct {
	listener net.Listener
	address  string
}

func NewServer(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
	}, nil
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if _, ok := err.(*net.OpError); ok {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// SessionService exposes the live session over net/rpc for operators.
type SessionService struct {
	coordinator *game.Coordinator
}

func NewSessionService(c *game.Coordinator) *SessionService {
	return &SessionService{coordinator: c}
}

type StatusArgs struct{}

type StatusReply struct {
	Players    int
	Phase      string
	WordChosen bool
}

// GetStatus reports the session snapshot. It follows the net/rpc
// signature rules: exported method, pointer reply, error return.
func (s *SessionService) GetStatus(args *StatusArgs, reply *StatusReply) error {
	status := s.coordinator.Status()
	reply.Players = status.Players
	reply.Phase = status.Phase.String()
	reply.WordChosen = status.WordChosen
	return nil
}
