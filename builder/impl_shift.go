package builder

import "github.com/katalvlaran/densegraph/densityfn"

// buildShift assembles shift_x and shift_z: CacheFlat(Cache2D(ShiftA|ShiftB
// (noise "offset"))), the axis-decorrelation offsets every *_overworld
// noise lookup feeds through.
func buildShift(reg NoiseRegistry, cfg *config) (shiftX, shiftZ densityfn.Node, err error) {
	offsetNoise, err := reg.lookup("offset", cfg.seed)
	if err != nil {
		return nil, nil, err
	}
	shiftX = densityfn.WrapCacheFlat(densityfn.WrapCache2D(densityfn.ShiftA(offsetNoise)))
	shiftZ = densityfn.WrapCacheFlat(densityfn.WrapCache2D(densityfn.ShiftB(offsetNoise)))
	return shiftX, shiftZ, nil
}
