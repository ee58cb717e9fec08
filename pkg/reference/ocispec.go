package reference

import (
	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// Annotations renders r as OCI image annotations, suitable for attaching to
// a manifest or an index entry. The ref-name annotation carries the tag when
// one is present, otherwise the full reference.
func (r Reference) Annotations() map[string]string {
	annotations := map[string]string{
		imgspecv1.AnnotationRefName: r.String(),
	}
	if tag, ok := r.Tag(); ok {
		annotations[imgspecv1.AnnotationRefName] = tag
	}
	return annotations
}

// Descriptor renders c as a minimal OCI descriptor: the content-addressing
// digest plus a ref-name annotation. MediaType and Size are for the caller
// to fill in; the reference alone does not know them.
func (c Canonical) Descriptor() imgspecv1.Descriptor {
	return imgspecv1.Descriptor{
		Digest:      c.Digest().Digest(),
		Annotations: c.Annotations(),
	}
}
