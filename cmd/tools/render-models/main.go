// Command render-models writes every built-in shape (generated locally or
// fetched from a gRPC model service), and optionally every design saved on a
// running server, as JSON, a CloudCompare .asc file, an echarts HTML page and
// PNG projections.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/banshee-data/pointcloud/internal/api"
	"github.com/banshee-data/pointcloud/internal/rpc"
	"github.com/banshee-data/pointcloud/internal/shapes"
)

func main() {
	outDir := flag.String("out", "renders", "output directory")
	server := flag.String("server", "", "base URL of a pointcloud server whose designs are rendered too (e.g. http://localhost:5000)")
	grpcAddr := flag.String("grpc", "", "address of a pointcloud gRPC service to fetch shapes from instead of generating them (e.g. localhost:5001)")
	workers := flag.Int("workers", 4, "concurrent renders")
	assetsHost := flag.String("assets-host", "", "override the echarts JS assets host")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	o := Options{OutDir: *outDir, Workers: *workers, AssetsHost: *assetsHost}
	if *server != "" {
		o.Client = api.NewClient(*server, &http.Client{Timeout: 30 * time.Second})
	}

	if *grpcAddr != "" {
		conn, err := grpc.NewClient(*grpcAddr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(rpc.MaxMsgSize)),
		)
		if err != nil {
			log.Fatalf("failed to dial gRPC %s: %v", *grpcAddr, err)
		}
		defer conn.Close()
		o.Models = rpc.NewModelServiceClient(conn)
	}

	written, err := Run(ctx, shapes.NewRegistry(), o)
	if err != nil {
		log.Printf("render failed: %v", err)
		os.Exit(1)
	}
	log.Printf("done: wrote %d files to %s", len(written), *outDir)
}
