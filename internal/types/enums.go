package types

type DeclarationKind string

const (
	DeclarationKindStruct DeclarationKind = "struct"
	DeclarationKindAlias  DeclarationKind = "alias"
)

type TypeKind string

const (
	TypeKindPrimitive TypeKind = "primitive"
	TypeKindStruct    TypeKind = "struct"
)

type ColorMode string

const (
	ColorModeAuto   ColorMode = "auto"
	ColorModeAlways ColorMode = "always"
	ColorModeNever  ColorMode = "never"
)
