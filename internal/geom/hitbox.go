package geom

// HitboxInset is the fixed margin, in world units, carved off hitboxes to
// make collisions feel fairer than the raw visual silhouette. Spikes lose
// it on their left, right and top; the player square loses it on every
// side. The value is shared deliberately: together with the spike inset it
// defines the tuned difficulty, so it must not be "corrected" per shape.
const HitboxInset = 6.0

// SpikeHitbox reduces a visually triangular spike to a smaller inset
// rectangle approximating its silhouette, so near-miss grazes along the
// sloped edges are forgiven. The box spans down to the floor: a spike has
// no underside to slip through.
func SpikeHitbox(worldX, floorY, w, h float64) Rect {
	return Rect{
		X: worldX + HitboxInset,
		Y: floorY - h + HitboxInset,
		W: w - 2*HitboxInset,
		H: h - HitboxInset,
	}
}

// BlockHitbox is the obstacle's full rectangle. Blocks give no leniency.
func BlockHitbox(worldX, floorY, w, h float64) Rect {
	return Rect{X: worldX, Y: floorY - h, W: w, H: h}
}

// PlayerHitbox is the player's square inset on every side.
func PlayerHitbox(x, y, size float64) Rect {
	return NewRect(x, y, size, size).Inset(HitboxInset)
}
