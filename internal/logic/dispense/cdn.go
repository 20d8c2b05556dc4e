package dispense

import (
	"net/url"
	"strings"

	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/pkg/errors"
)

const archiveSuffix = ".zip"

// URLBuilder forms <base>/<platform>/<version>-<artifact>.zip.
type URLBuilder struct {
	Base     string
	Platform string
	Artifact string
}

func NewURLBuilder(conf *config.Config) *URLBuilder {
	return &URLBuilder{
		Base:     conf.Download.CdnBase,
		Platform: conf.Download.Platform,
		Artifact: conf.Download.Artifact,
	}
}

func (b *URLBuilder) Name() string {
	return "cdn"
}

// Build interpolates version as is; it is expected to be URL safe already.
func (b *URLBuilder) Build(version string) (string, error) {
	if version == "" {
		return "", errs.ErrEmptyVersion
	}

	base := strings.TrimSuffix(b.Base, "/")
	u, err := url.Parse(base)
	if err != nil {
		return "", errs.ErrInsecureScheme.Wrap(errors.WithMessage(err, "failed to parse cdn base"))
	}
	if u.Scheme != "https" || u.Host == "" {
		return "", errs.ErrInsecureScheme.Wrap(errors.Errorf("cdn base %q", b.Base))
	}

	var (
		platform = strings.Trim(b.Platform, "/")
		file     = strings.Join([]string{version, "-", b.Artifact, archiveSuffix}, "")
	)
	return strings.Join([]string{base, platform, file}, "/"), nil
}
