package server

import (
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-key-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	var opts []grpc.ServerOption
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	return &grpcServer{
		handler: handler,
		server:  handler.Init(opts...),
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Listen")
		return
	}

	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
