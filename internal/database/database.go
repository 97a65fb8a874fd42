package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Global handles ---
var (
	Redis *redis.Client
	MinIO *minio.Client

	scyllaMu      sync.Mutex
	scyllaSession *gocql.Session
)

// ConnectDatabases opens every backing service the server needs:
// ScyllaDB for the content store, Redis for carts and caching, MinIO
// for uploaded images.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := GetSession(); err != nil {
		log.Fatalf("❌ ScyllaDB initialisation failed: %v", err)
	}
	log.Println("✅ Connected to ScyllaDB")

	connectRedis(ctx)
	connectMinIO(ctx)

	log.Println("✅ All databases connected")
}

// =============================================
// SCYLLA DB
// =============================================

func scyllaCluster() *gocql.ClusterConfig {
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	if len(hosts) == 1 && hosts[0] == "" {
		hosts = []string{"127.0.0.1"}
	}

	keyspace := os.Getenv("SCYLLA_KEYSPACE")
	if keyspace == "" {
		keyspace = "msvosa"
	}

	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 5 * time.Second
	cluster.NumConns = 10
	cluster.ReconnectInterval = 1 * time.Second
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	if username := os.Getenv("SCYLLA_USERNAME"); username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: username,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}

	return cluster
}

// GetSession returns the shared ScyllaDB session, recreating it when
// the existing one no longer answers. Tables are created manually via
// scripts/scylladb_init.cql.
func GetSession() (*gocql.Session, error) {
	scyllaMu.Lock()
	defer scyllaMu.Unlock()

	if scyllaSession != nil {
		if err := scyllaSession.Query("SELECT now() FROM system.local").Exec(); err == nil {
			return scyllaSession, nil
		}
		scyllaSession.Close()
		scyllaSession = nil
	}

	session, err := scyllaCluster().CreateSession()
	if err != nil {
		return nil, fmt.Errorf("creating ScyllaDB session: %v", err)
	}
	scyllaSession = session
	return session, nil
}

// CloseScylla closes the shared session.
func CloseScylla() {
	scyllaMu.Lock()
	defer scyllaMu.Unlock()
	if scyllaSession != nil {
		scyllaSession.Close()
		scyllaSession = nil
		log.Println("🔌 ScyllaDB session closed")
	}
}

// =============================================
// REDIS
// =============================================

func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis connection failed:", err)
	}
	log.Println("✅ Connected to Redis")
}

// =============================================
// MINIO
// =============================================

func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	if endpoint == "" {
		log.Println("⚠️ MinIO not configured, image uploads disabled")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("❌ MinIO connection failed:", err)
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	if bucketName == "" {
		bucketName = "msvosa-uploads"
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("❌ MinIO bucket check failed:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("❌ MinIO bucket creation failed:", err)
		}
		log.Println("🪣 Bucket created:", bucketName)
	}

	MinIO = client
	log.Println("✅ Connected to MinIO:", endpoint)
}
