package tokenizer

// namedEntityTable is the static name -> replacement mapping consumed
// by the Entity Trie. Most HTML named references require a
// trailing semicolon and are keyed with one; a fixed legacy subset
// (kept here for compatibility with historical markup, matching the
// real HTML5 named character reference list) is also valid without
// it and is keyed without the semicolon.
//
// This is a representative subset, not the full ~2200-entry WHATWG
// table: enough entities, and enough shared prefixes, to exercise the
// trie's longest-match-with-backtrack behavior (see charref.go and the
// "notit"/"notin" example in scenario 3).
var namedEntityTable = map[string]string{
	// Legacy, semicolon-optional (both forms kept, as in the real table).
	"amp": "&", "amp;": "&",
	"AMP": "&", "AMP;": "&",
	"lt": "<", "lt;": "<",
	"LT": "<", "LT;": "<",
	"gt": ">", "gt;": ">",
	"GT": ">", "GT;": ">",
	"quot": "\"", "quot;": "\"",
	"QUOT": "\"", "QUOT;": "\"",
	"nbsp": " ", "nbsp;": " ",
	"copy": "©", "copy;": "©",
	"COPY": "©", "COPY;": "©",
	"reg": "®", "reg;": "®",
	"REG": "®", "REG;": "®",
	"not": "¬", "not;": "¬",
	"uml": "¨", "uml;": "¨",
	"deg": "°", "deg;": "°",
	"micro": "µ", "micro;": "µ",
	"para": "¶", "para;": "¶",
	"middot": "·", "middot;": "·",
	"laquo": "«", "laquo;": "«",
	"raquo": "»", "raquo;": "»",
	"plusmn": "±", "plusmn;": "±",
	"sup1": "¹", "sup1;": "¹",
	"sup2": "²", "sup2;": "²",
	"sup3": "³", "sup3;": "³",
	"frac12": "½", "frac12;": "½",
	"frac14": "¼", "frac14;": "¼",
	"frac34": "¾", "frac34;": "¾",
	"times": "×", "times;": "×",
	"divide": "÷", "divide;": "÷",
	"curren": "¤", "curren;": "¤",
	"cent": "¢", "cent;": "¢",
	"pound": "£", "pound;": "£",
	"yen": "¥", "yen;": "¥",
	"sect": "§", "sect;": "§",

	// Semicolon-required named references.
	"apos;":   "'",
	"ensp;":   " ",
	"emsp;":   " ",
	"thinsp;": " ",
	"zwnj;":   "‌",
	"zwj;":    "‍",
	"lrm;":    "‎",
	"rlm;":    "‏",
	"ndash;":  "–",
	"mdash;":  "—",
	"lsquo;":  "‘",
	"rsquo;":  "’",
	"sbquo;":  "‚",
	"ldquo;":  "“",
	"rdquo;":  "”",
	"bdquo;":  "„",
	"dagger;": "†",
	"Dagger;": "‡",
	"bull;":   "•",
	"hellip;": "…",
	"permil;": "‰",
	"prime;":  "′",
	"Prime;":  "″",
	"oline;":  "‾",
	"frasl;":  "⁄",
	"euro;":   "€",
	"trade;":  "™",
	"larr;":   "←",
	"uarr;":   "↑",
	"rarr;":   "→",
	"darr;":   "↓",
	"harr;":   "↔",
	"crarr;":  "↵",
	"lArr;":   "⇐",
	"uArr;":   "⇑",
	"rArr;":   "⇒",
	"dArr;":   "⇓",
	"hArr;":   "⇔",
	"forall;": "∀",
	"part;":   "∂",
	"exist;":  "∃",
	"empty;":  "∅",
	"nabla;":  "∇",
	"isin;":   "∈",
	"notin;":  "∉",
	"ni;":     "∋",
	"prod;":   "∏",
	"sum;":    "∑",
	"minus;":  "−",
	"lowast;": "∗",
	"radic;":  "√",
	"prop;":   "∝",
	"infin;":  "∞",
	"ang;":    "∠",
	"and;":    "∧",
	"or;":     "∨",
	"cap;":    "∩",
	"cup;":    "∪",
	"int;":    "∫",
	"there4;": "∴",
	"sim;":    "∼",
	"cong;":   "≅",
	"asymp;":  "≈",
	"ne;":     "≠",
	"equiv;":  "≡",
	"le;":     "≤",
	"ge;":     "≥",
	"sub;":    "⊂",
	"sup;":    "⊃",
	"nsub;":   "⊄",
	"sube;":   "⊆",
	"supe;":   "⊇",
	"oplus;":  "⊕",
	"otimes;": "⊗",
	"perp;":   "⊥",
	"sdot;":   "⋅",
	"alpha;":  "α",
	"beta;":   "β",
	"gamma;":  "γ",
	"delta;":  "δ",
	"epsilon;": "ε",
	"zeta;":   "ζ",
	"eta;":    "η",
	"theta;":  "θ",
	"iota;":   "ι",
	"kappa;":  "κ",
	"lambda;": "λ",
	"mu;":     "μ",
	"nu;":     "ν",
	"xi;":     "ξ",
	"omicron;": "ο",
	"pi;":     "π",
	"rho;":    "ρ",
	"sigma;":  "σ",
	"tau;":    "τ",
	"upsilon;": "υ",
	"phi;":    "φ",
	"chi;":    "χ",
	"psi;":    "ψ",
	"omega;":  "ω",
	"Alpha;":  "Α",
	"Beta;":   "Β",
	"Gamma;":  "Γ",
	"Delta;":  "Δ",
	"Omega;":  "Ω",
	"Sigma;":  "Σ",
	"Pi;":     "Π",
}
