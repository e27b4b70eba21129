// SPDX-License-Identifier: MIT

package source

import (
	"fmt"
	"strings"
)

// Scheme names understood by Parse.
const (
	SchemeFile  = "file"
	SchemeS3    = "s3"
	SchemeMinIO = "minio"
)

// Location is a parsed matrix URI. For local files Bucket is empty and Key
// holds the path.
type Location struct {
	Scheme string
	Bucket string
	Key    string
}

// String renders l back into URI form; local paths come back bare.
func (l Location) String() string {
	if l.Scheme == SchemeFile {
		return l.Key
	}

	return l.Scheme + "://" + l.Bucket + "/" + l.Key
}

// Parse splits uri into scheme, bucket and key. A string without "://" is a
// local path.
func Parse(uri string) (Location, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return Location{Scheme: SchemeFile, Key: uri}, nil
	}

	switch scheme = strings.ToLower(scheme); scheme {
	case SchemeFile:
		if rest == "" {
			return Location{}, fmt.Errorf("%w: %q has no path", ErrBadURI, uri)
		}
		return Location{Scheme: SchemeFile, Key: rest}, nil
	case SchemeS3, SchemeMinIO:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return Location{}, fmt.Errorf("%w: %q needs bucket and key", ErrBadURI, uri)
		}
		return Location{Scheme: scheme, Bucket: bucket, Key: key}, nil
	default:
		return Location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}
}
