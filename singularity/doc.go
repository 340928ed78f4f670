// Package singularity computes the multiscale singularity index of a
// single-channel intensity image: a per-pixel confidence that the pixel lies
// on an elongated dark curvilinear structure (a river channel, a valley
// floor), together with the structure's estimated width and dominant
// orientation.
//
// The detector follows the modified multiscale singularity index of Isikdogan,
// Bovik and Passalacqua. At each scale the image is debiased, filtered with a
// steerable second-derivative-of-Gaussian basis (0, 60, 120 degrees), and the
// orientation extremizing the steered response is recovered in closed form.
// The per-scale response
//
//	psi = |J0| * J2 / (1 + |J1|^2)
//
// rewards intensity amplitude (J0) and along-structure curvature (J2) while
// suppressing step edges through the first-derivative term J1. Responses are
// combined across a geometric scale sequence minScale*sqrt(2)^s by an L2
// norm, with winner-take-all orientation selection and response-weighted
// width estimation.
//
// # Usage
//
// Build a [FilterBank] once and reuse it for every image:
//
//	fb, err := singularity.NewFilterBank(1.5, 15)
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := singularity.Respond(img, fb)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// resp.Index, resp.Width, resp.Orientation
//
// Per-scale passes are independent and can run concurrently:
//
//	resp, err := singularity.Respond(img, fb, singularity.WithParallel())
//
// # Polarity
//
// The detector fires on dark structures over brighter surroundings only;
// bright ridges produce no response. Invert the input beforehand to detect
// the opposite polarity.
//
// # Orientation
//
// Orientation values live in (-pi/2, pi/2] and wrap at the interval ends.
// When a coarse scale's orientation map is resized back to the input
// resolution it is sampled nearest-neighbor: linear blending across the wrap
// would average pi/2 with -pi/2 into 0. Nearest sampling avoids that but
// still cannot interpolate angles circularly, so orientation accuracy is
// limited near scale-combination boundaries.
package singularity
