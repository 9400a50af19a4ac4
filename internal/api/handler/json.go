package handler

import jsoniter "github.com/json-iterator/go"

// json substitui o encoding/json padrão na serialização das respostas.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
