package filestore_test

import (
	"context"

	"github.com/fsouza/fake-gcs-server/fakestorage"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/filestore"
	. "github.com/veedubyou/stem-curator/src/shared/testing"
)

const (
	storageHost = "https://storage.googleapis.com"
	bucketName  = "stem-curator-test"
)

var _ = Describe("GoogleFileStore", func() {
	var (
		cloudStorage *fakestorage.Server
		store        filestore.GoogleFileStore
		ctx          context.Context
	)

	BeforeEach(func() {
		By("Initializing Fake Cloud Storage Server")
		cloudStorage = ExpectSuccess(fakestorage.NewServerWithOptions(fakestorage.Options{
			NoListener: true,
			InitialObjects: []fakestorage.Object{
				{
					ObjectAttrs: fakestorage.ObjectAttrs{
						BucketName: bucketName,
						Name:       "train/guitar/existing.wav",
					},
					Content: []byte("existing"),
				},
			},
		}))

		store = filestore.NewGoogleFileStoreFromClient(storageHost, cloudStorage.Client())
		ctx = context.Background()
	})

	AfterEach(func() {
		cloudStorage.Stop()
	})

	It("writes an object that can be read back", func() {
		fileURL := storageHost + "/" + bucketName + "/train/vocal/new.wav"
		Expect(store.WriteFile(ctx, fileURL, []byte("new"))).To(Succeed())

		object := ExpectSuccess(cloudStorage.GetObject(bucketName, "train/vocal/new.wav"))
		Expect(string(object.Content)).To(Equal("new"))
	})

	It("overwrites an existing object", func() {
		fileURL := storageHost + "/" + bucketName + "/train/guitar/existing.wav"
		Expect(store.WriteFile(ctx, fileURL, []byte("replaced"))).To(Succeed())

		object := ExpectSuccess(cloudStorage.GetObject(bucketName, "train/guitar/existing.wav"))
		Expect(string(object.Content)).To(Equal("replaced"))
	})

	It("fails for a URL on another host", func() {
		err := store.WriteFile(ctx, "http://elsewhere/"+bucketName+"/a.wav", []byte("x"))
		Expect(err).To(HaveOccurred())
	})
})
