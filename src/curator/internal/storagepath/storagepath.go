package storagepath

import (
	"path"
	"strings"

	"github.com/cockroachdb/errors"
)

// Generator builds object URLs of the form <host>/<bucket>/<prefix>/<category>/<file>.
type Generator struct {
	Host   string
	Bucket string
	Prefix string
}

func (g Generator) GeneratePath(category string, fileName string) string {
	return strings.TrimSuffix(g.Host, "/") + "/" + path.Join(g.Bucket, g.Prefix, category, fileName)
}

// SplitURL undoes GeneratePath for any object URL under host, returning the
// bucket and object name.
func SplitURL(host string, fileURL string) (bucket string, object string, err error) {
	trimmedHost := strings.TrimSuffix(host, "/") + "/"
	if !strings.HasPrefix(fileURL, trimmedHost) {
		return "", "", errors.Newf("File URL %q is not under storage host %q", fileURL, host)
	}

	rest := strings.TrimPrefix(fileURL, trimmedHost)
	bucket, object, found := strings.Cut(rest, "/")
	if !found || bucket == "" || object == "" {
		return "", "", errors.Newf("File URL %q has no bucket and object", fileURL)
	}

	return bucket, object, nil
}
