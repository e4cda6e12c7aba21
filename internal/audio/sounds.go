package audio

import "math"

// Generate renders a cue as interleaved stereo float32 LE samples.
func Generate(kind SoundKind) []byte {
	switch kind {
	case SoundCoin:
		return genCoin()
	case SoundCrash:
		return genCrash()
	case SoundGameOver:
		return genGameOver()
	case SoundSelect:
		return genSelect()
	}
	return nil
}

func seconds(s float64) int { return int(s * SampleRate) }

// genCoin: two-note FM bell, B5 then E6.
func genCoin() []byte {
	notes := []float64{987.77, 1318.51}
	step := seconds(0.07)
	mix := make([]float64, len(notes)*step+seconds(0.2))
	env := envelope{attack: 0.004, decay: 0.5, sustain: 0.05, release: 0.35}

	for k, freq := range notes {
		start := k * step
		n := len(mix) - start
		for j := 0; j < n; j++ {
			t := float64(start+j) / SampleRate
			e := env.at(float64(j) / float64(n))
			mix[start+j] += fmTone(t, freq, 2.756, 4*e)*e*0.36 +
				math.Sin(4*math.Pi*freq*t)*e*0.08
		}
	}
	return mixdown(mix)
}

// genCrash: falling sub boom under bandpassed noise.
func genCrash() []byte {
	mix := make([]float64, seconds(0.6))
	src := noise{s: 0xC0FFEE}
	var fast, slow, phase float64
	for i := range mix {
		p := float64(i) / float64(len(mix))

		phase += 2 * math.Pi * 120 * math.Pow(0.2, p*2.2) / SampleRate
		boom := math.Sin(phase) * math.Exp(-4.5*p) * 0.6

		w := src.next()
		fast += (w - fast) * 0.24
		slow += (w - slow) * 0.025
		rumble := (fast - slow) * math.Exp(-5*p) * 0.4

		var crack float64
		if p < 0.03 {
			crack = src.next() * (1 - p/0.03) * 0.7
		}
		mix[i] = (boom + rumble + crack) * 0.86
	}
	return mixdown(mix)
}

// genGameOver: a stalling engine gliding down as the plane drops out of the
// sky, with wind rising underneath.
func genGameOver() []byte {
	mix := make([]float64, seconds(1.2))
	src := noise{s: 0x5EED}
	env := envelope{attack: 0.02, decay: 0.1, sustain: 0.8, release: 0.3}
	var phase, wind float64
	for i := range mix {
		p := float64(i) / float64(len(mix))
		e := env.at(p)

		// Exponential glide 880 Hz to 110 Hz with a sputtering wobble.
		freq := 880 * math.Pow(0.125, p) * (1 + 0.03*math.Sin(2*math.Pi*7*p))
		phase += 2 * math.Pi * freq / SampleRate
		engine := (math.Sin(phase) + 0.3*math.Sin(2*phase)) * e * 0.3

		wind += (src.next() - wind) * (0.02 + 0.1*p)
		mix[i] = engine + wind*p*e*0.5
	}
	return mixdown(mix)
}

// genSelect: crisp click for mode toggles.
func genSelect() []byte {
	mix := make([]float64, seconds(0.065))
	env := envelope{attack: 0.004, decay: 0.55, sustain: 0, release: 0.1}
	for i := range mix {
		t := float64(i) / SampleRate
		p := float64(i) / float64(len(mix))
		mix[i] = fmTone(t, 1400-700*p, 1, 0.6) * env.at(p) * 0.38
	}
	return mixdown(mix)
}
