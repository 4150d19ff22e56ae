// Package rfmodel provides the format-preserving document model for Robot
// Framework plain-text files.
//
// A Document owns a token arena. Physical lines and semantic elements both
// refer to tokens by TokenID, so a token is stored exactly once and every
// view of it observes the same text, position and dirty flag.
//
// Tokens created by the parser carry their source position and are clean.
// Tokens created or edited afterwards are dirty and must be re-serialized;
// see package dump.
package rfmodel
