package provider

import (
	"github.com/MirrorChyan/macdl/internal/logic/dispense"
	"github.com/MirrorChyan/macdl/internal/logic/download"
	"github.com/google/wire"
)

var LogicSet = wire.NewSet(
	dispense.NewURLBuilder,
)

var DownloadSet = wire.NewSet(
	LogicSet,
	download.NewInitiator,
)
