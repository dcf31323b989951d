package board

// Kind is the generic piece type held in the low three bits of a Piece.
type Kind uint8

const (
	KindNone Kind = iota
	KindPawn
	KindKing
	KindQueen
	KindRook
	KindBishop
	KindKnight
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Kind{KindQueen, KindRook, KindBishop, KindKnight}

func (k Kind) String() string {
	return k.Name()
}

func (k Kind) Name() string {
	switch k {
	case KindPawn:
		return "Pawn"
	case KindKing:
		return "King"
	case KindQueen:
		return "Queen"
	case KindRook:
		return "Rook"
	case KindBishop:
		return "Bishop"
	case KindKnight:
		return "Knight"
	default:
		return ""
	}
}

// Symbol returns the uppercase letter used by SAN and FEN, or 0 for KindNone.
func (k Kind) Symbol() byte {
	switch k {
	case KindPawn:
		return 'P'
	case KindKing:
		return 'K'
	case KindQueen:
		return 'Q'
	case KindRook:
		return 'R'
	case KindBishop:
		return 'B'
	case KindKnight:
		return 'N'
	default:
		return 0
	}
}

// NewKindFromSymbol accepts either case.
func NewKindFromSymbol(sym byte) Kind {
	switch sym | 0x20 {
	case 'p':
		return KindPawn
	case 'k':
		return KindKing
	case 'q':
		return KindQueen
	case 'r':
		return KindRook
	case 'b':
		return KindBishop
	case 'n':
		return KindKnight
	default:
		return KindNone
	}
}

// IsSlider reports whether the kind moves along rays.
func (k Kind) IsSlider() bool {
	return k == KindQueen || k == KindRook || k == KindBishop
}

// Piece is a 4-bit code: bit 3 is the side, bits 0-2 the kind.
type Piece uint8

const (
	PieceNone Piece = 0

	WhitePawn   = Piece(SideWhite)<<3 | Piece(KindPawn)
	WhiteKing   = Piece(SideWhite)<<3 | Piece(KindKing)
	WhiteQueen  = Piece(SideWhite)<<3 | Piece(KindQueen)
	WhiteRook   = Piece(SideWhite)<<3 | Piece(KindRook)
	WhiteBishop = Piece(SideWhite)<<3 | Piece(KindBishop)
	WhiteKnight = Piece(SideWhite)<<3 | Piece(KindKnight)
	BlackPawn   = Piece(SideBlack)<<3 | Piece(KindPawn)
	BlackKing   = Piece(SideBlack)<<3 | Piece(KindKing)
	BlackQueen  = Piece(SideBlack)<<3 | Piece(KindQueen)
	BlackRook   = Piece(SideBlack)<<3 | Piece(KindRook)
	BlackBishop = Piece(SideBlack)<<3 | Piece(KindBishop)
	BlackKnight = Piece(SideBlack)<<3 | Piece(KindKnight)
)

func NewPiece(s Side, k Kind) Piece {
	if k == KindNone {
		return PieceNone
	}
	return Piece(s&1)<<3 | Piece(k&7)
}

// NewPieceFromFEN decodes a FEN letter, uppercase white and lowercase black.
func NewPieceFromFEN(sym byte) Piece {
	k := NewKindFromSymbol(sym)
	if k == KindNone {
		return PieceNone
	}
	if sym >= 'a' {
		return NewPiece(SideBlack, k)
	}
	return NewPiece(SideWhite, k)
}

func (p Piece) Kind() Kind {
	return Kind(p & 7)
}

func (p Piece) Side() Side {
	return Side(p>>3) & 1
}

func (p Piece) IsNone() bool {
	return p.Kind() == KindNone
}

func (p Piece) String() string {
	if p.IsNone() {
		return ""
	}
	return p.Side().String() + " " + p.Kind().Name()
}

// SymbolFEN returns the FEN letter, or "" for PieceNone.
func (p Piece) SymbolFEN() string {
	sym := p.Kind().Symbol()
	if sym == 0 {
		return ""
	}
	if p.Side() == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolAlgebra() string {
	if p.Kind() == KindPawn {
		return ""
	}
	return string(p.Kind().Symbol())
}

func (p Piece) SymbolUnicode(invert bool) string {
	s := p.Side()
	if invert {
		s = s.Opposite()
	}
	switch s {
	case SideWhite:
		switch p.Kind() {
		case KindPawn:
			return "♙"
		case KindBishop:
			return "♗"
		case KindKnight:
			return "♘"
		case KindRook:
			return "♖"
		case KindQueen:
			return "♕"
		case KindKing:
			return "♔"
		default:
			return ""
		}
	default:
		switch p.Kind() {
		case KindPawn:
			return "♟"
		case KindBishop:
			return "♝"
		case KindKnight:
			return "♞"
		case KindRook:
			return "♜"
		case KindQueen:
			return "♛"
		case KindKing:
			return "♚"
		default:
			return ""
		}
	}
}
