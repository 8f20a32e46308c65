package siren

// Named piano-key frequency constants, A0..C8, computed with equal
// temperament: f(n) = 440 * 2^((n-49)/12), where n is the 1-based piano
// key index (A0 = key 1, A4 = key 49 = 440Hz, C8 = key 88). Sharps use an
// "S" suffix (e.g. CS4 = C#4) since Go identifiers can't contain '#'.
// Any float32 Hz value is accepted anywhere a note frequency is
// required; these are conveniences, not a closed type.
const (
	A0 float32 = 27.500000
	AS0 float32 = 29.135235
	B0 float32 = 30.867706
	C1 float32 = 32.703196
	CS1 float32 = 34.647829
	D1 float32 = 36.708096
	DS1 float32 = 38.890873
	E1 float32 = 41.203445
	F1 float32 = 43.653529
	FS1 float32 = 46.249303
	G1 float32 = 48.999429
	GS1 float32 = 51.913087
	A1 float32 = 55.000000
	AS1 float32 = 58.270470
	B1 float32 = 61.735413
	C2 float32 = 65.406391
	CS2 float32 = 69.295658
	D2 float32 = 73.416192
	DS2 float32 = 77.781746
	E2 float32 = 82.406889
	F2 float32 = 87.307058
	FS2 float32 = 92.498606
	G2 float32 = 97.998859
	GS2 float32 = 103.826174
	A2 float32 = 110.000000
	AS2 float32 = 116.540940
	B2 float32 = 123.470825
	C3 float32 = 130.812783
	CS3 float32 = 138.591315
	D3 float32 = 146.832384
	DS3 float32 = 155.563492
	E3 float32 = 164.813778
	F3 float32 = 174.614116
	FS3 float32 = 184.997211
	G3 float32 = 195.997718
	GS3 float32 = 207.652349
	A3 float32 = 220.000000
	AS3 float32 = 233.081881
	B3 float32 = 246.941651
	C4 float32 = 261.625565
	CS4 float32 = 277.182631
	D4 float32 = 293.664768
	DS4 float32 = 311.126984
	E4 float32 = 329.627557
	F4 float32 = 349.228231
	FS4 float32 = 369.994423
	G4 float32 = 391.995436
	GS4 float32 = 415.304698
	A4 float32 = 440.000000
	AS4 float32 = 466.163762
	B4 float32 = 493.883301
	C5 float32 = 523.251131
	CS5 float32 = 554.365262
	D5 float32 = 587.329536
	DS5 float32 = 622.253967
	E5 float32 = 659.255114
	F5 float32 = 698.456463
	FS5 float32 = 739.988845
	G5 float32 = 783.990872
	GS5 float32 = 830.609395
	A5 float32 = 880.000000
	AS5 float32 = 932.327523
	B5 float32 = 987.766603
	C6 float32 = 1046.502261
	CS6 float32 = 1108.730524
	D6 float32 = 1174.659072
	DS6 float32 = 1244.507935
	E6 float32 = 1318.510228
	F6 float32 = 1396.912926
	FS6 float32 = 1479.977691
	G6 float32 = 1567.981744
	GS6 float32 = 1661.218790
	A6 float32 = 1760.000000
	AS6 float32 = 1864.655046
	B6 float32 = 1975.533205
	C7 float32 = 2093.004522
	CS7 float32 = 2217.461048
	D7 float32 = 2349.318143
	DS7 float32 = 2489.015870
	E7 float32 = 2637.020455
	F7 float32 = 2793.825851
	FS7 float32 = 2959.955382
	G7 float32 = 3135.963488
	GS7 float32 = 3322.437581
	A7 float32 = 3520.000000
	AS7 float32 = 3729.310092
	B7 float32 = 3951.066410
	C8 float32 = 4186.009045
)
