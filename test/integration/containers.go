package integration

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/testcontainers/testcontainers-go/modules/gcloud"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const projectID = "relay-test"

type Env struct {
	Firestore *gcloud.GCloudContainer
	Client    *firestore.Client
	conn      *grpc.ClientConn
}

func Setup(ctx context.Context) (*Env, error) {
	fsC, err := gcloud.RunFirestore(ctx,
		"gcr.io/google.com/cloudsdktool/google-cloud-cli:emulators",
		gcloud.WithProjectID(projectID),
	)
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(fsC.URI, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		_ = fsC.Terminate(ctx)
		return nil, err
	}

	client, err := firestore.NewClient(ctx, projectID, option.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		_ = fsC.Terminate(ctx)
		return nil, err
	}

	return &Env{Firestore: fsC, Client: client, conn: conn}, nil
}

func (e *Env) Teardown(ctx context.Context) {
	_ = e.Client.Close()
	_ = e.Firestore.Terminate(ctx)
}
