package regex

// Grammar is the accepted syntax in EBNF (golang.org/x/exp/ebnf notation).
// Literals are any Unicode letter or number; the lexical productions below
// spell out the ASCII subset.
const Grammar = `Expression = Term [ "|" Expression ] .
Term = Factor { Factor } .
Factor = Base [ "*" ] .
Base = "(" Expression ")" | literal .
literal = letter | digit .
letter = "a" … "z" | "A" … "Z" .
digit = "0" … "9" .
`
