// Package mongo provides MongoDB connection management with fail-fast
// configuration contracts.
//
// The package emphasizes operational reliability through environment-based
// configuration, retry logic for transient startup failures, and connection
// pooling defaults that work for typical service workloads without manual
// tuning. Connection URL, retry and pool-size contracts are guarded before
// any dial, so a misconfigured service fails with a parameter error instead
// of burning retry attempts.
//
// # Usage
//
//	import (
//		"context"
//
//		"github.com/guardkit/guardkit/pkg/mongo"
//	)
//
//	func main() {
//		cfg := mongo.Config{
//			ConnectionURL: "mongodb://localhost:27017",
//			MaxPoolSize:   100,
//			RetryAttempts: 3,
//		}
//
//		client, err := mongo.Connect(context.Background(), cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer client.Disconnect(context.Background())
//
//		db, err := mongo.ConnectDatabase(context.Background(), cfg, "app")
//		if err != nil {
//			log.Fatal(err)
//		}
//		_ = db
//
//		// Wire health check
//		health := mongo.Healthcheck(client)
//		if err := health(context.Background()); err != nil {
//			log.Println("mongo is unavailable:", err)
//		}
//	}
//
// # Error Handling
//
// Connection failures are wrapped in package sentinel errors and contract
// violations unwrap to the guard package kinds. Use errors.Is() to check for
// specific failure scenarios and implement appropriate retry or fallback
// logic.
package mongo
