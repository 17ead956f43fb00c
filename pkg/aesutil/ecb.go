package aesutil

import "crypto/cipher"

// ecb runs the block cipher over each block independently.
// It satisfies cipher.BlockMode so it can stand in for the standard library chaining modes.
type ecb struct {
	block   cipher.Block
	decrypt bool
}

func newECBEncrypter(block cipher.Block) cipher.BlockMode {
	return ecb{block: block}
}

func newECBDecrypter(block cipher.Block) cipher.BlockMode {
	return ecb{block: block, decrypt: true}
}

func (e ecb) BlockSize() int { return e.block.BlockSize() }

func (e ecb) CryptBlocks(dst, src []byte) {
	size := e.block.BlockSize()

	if len(src)%size != 0 {
		panic("aesutil: input not full blocks")
	}

	if len(dst) < len(src) {
		panic("aesutil: output smaller than input")
	}

	for i := 0; i < len(src); i += size {
		if e.decrypt {
			e.block.Decrypt(dst[i:i+size], src[i:i+size])
		} else {
			e.block.Encrypt(dst[i:i+size], src[i:i+size])
		}
	}
}
