package server

import (
	"net/http"
	"net/rpc"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/broadcast"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/config"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/game"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/logger"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/monitor"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/network"
	gamerpc "github.com/ErikWohl/ODE-Project-skribbl-io-Backend/rpc"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/session"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/words"
)

// GameServer ties the transport to the session coordinator: it accepts
// websocket connections, registers them as sessions and pumps their
// messages into the coordinator. One server hosts one game session.
type GameServer struct {
	cfg            config.ServerConfig
	upgrader       websocket.Upgrader
	sessionManager *session.Manager
	broadcaster    *broadcast.Broadcaster
	coordinator    *game.Coordinator
	rpcServer      *gamerpc.Server
	monitor        *monitor.Monitor
	shutdownChan   chan struct{}
}

func NewGameServer(cfg *config.Config, source *words.Source) *GameServer {
	s := &GameServer{
		cfg:            cfg.Server,
		sessionManager: session.NewManager(),
		monitor:        monitor.NewMonitor("skribbl"),
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // clients connect from arbitrary origins
			},
		},
	}

	s.broadcaster = broadcast.NewBroadcaster(s.sessionManager)
	s.coordinator = game.NewCoordinator(s.broadcaster, source, game.Settings{
		OfferCount:         cfg.Game.OfferCount,
		NegotiationTimeout: cfg.Game.NegotiationTimeout,
		Stats:              s.monitor,
	})

	rpcServer, err := gamerpc.NewServer(cfg.Server.RPCAddress)
	if err != nil {
		logger.Log.Fatalf("Failed to create RPC server: %v", err)
	}
	s.rpcServer = rpcServer
	rpc.Register(gamerpc.NewSessionService(s.coordinator))

	return s
}

func (s *GameServer) Start() error {
	go s.rpcServer.Start()
	s.monitor.StartServer(s.cfg.MonitorAddress)

	http.HandleFunc("/ws", s.handleWebSocket)
	logger.Log.Infof("Game server listening on %s", s.cfg.HTTPAddress)
	return http.ListenAndServe(s.cfg.HTTPAddress, nil)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
	s.rpcServer.Stop()
	s.coordinator.Close()
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		username = "placeholderUsername"
	}

	s.handleConnection(network.NewWSConnection(conn), username)
}

func (s *GameServer) handleConnection(conn *network.WSConnection, username string) {
	sess := session.NewSession(uuid.New().String(), username, conn)
	s.sessionManager.Add(sess)
	s.monitor.IncOnlinePlayers()

	logger.Log.Infof("New connection from %s, session ID: %s", conn.RemoteAddr(), sess.GetID())
	s.coordinator.OnConnect(sess.ID, username)

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", conn.RemoteAddr(), sess.GetID())
		s.monitor.DecOnlinePlayers()
		// OnDisconnect calls NotifyDisconnect, which releases the
		// session from the registry and closes the connection.
		s.coordinator.OnDisconnect(sess.ID)
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			start := time.Now()
			s.monitor.IncMessagesReceived()
			s.coordinator.OnMessage(sess.ID, msg)
			s.monitor.ObserveMessageLatency(time.Since(start))
		}
	}
}
