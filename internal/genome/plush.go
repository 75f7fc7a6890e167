package genome

import "github.com/justmarler/Clojush/internal/random"

// BuildPlush generates a Plush genome of random length in
// [1, maxGenomeSize]. Genes are independent draws; no correlation or
// de-duplication is applied across positions.
func BuildPlush(src *random.Source, assembler *Assembler, maxGenomeSize int) (Plush, error) {
	src = random.Ensure(src)

	size, err := RandomGenomeSize(src, maxGenomeSize)
	if err != nil {
		return nil, err
	}

	genes := make(Plush, 0, size)
	for i := 0; i < size; i++ {
		gene, err := assembler.Assemble(src)
		if err != nil {
			return nil, err
		}
		genes = append(genes, gene)
	}
	return genes, nil
}
