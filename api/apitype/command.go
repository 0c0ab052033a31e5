package apitype

type Command interface{}

type RequestId uint64

const NoRequest RequestId = 0
